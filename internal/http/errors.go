package http

import (
	"fmt"
	"strings"

	"site-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam = "HTTP_1000"
	codeInvalidBody       = "HTTP_1001"
)

func errInvalidQueryParam(details []string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam,
		"invalid query parameters: "+strings.Join(details, ", "), nil)
}

func errInvalidBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBody,
		fmt.Sprintf("invalid request body: %v", cause), cause)
}
