package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// storeError maps record-store failures to HTTP errors: unreachable or
// timed-out store calls surface as 503, anything else as 500 with the
// error message as detail. Side-channel failures never reach this path.
func storeError(err error) error {
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
