package handler

import (
	"google.golang.org/grpc/status"

	"github.com/dtroode/sessiond/internal/apierrors"
)

func handleError(err error) error {
	apiErr := apierrors.FromError(err)
	return status.Error(apiErr.GRPCCode, apiErr.Message)
}
