package service

import (
	"errors"
	"fmt"
	"strings"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
)

// parseID turns a path or body id into a uuid, reporting a 400 naming what was expected.
func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperr.BadRequest(fmt.Sprintf("Invalid %s ID", what))
	}
	return id, nil
}

// notFound maps a repository miss onto a 404 with msg; any other failure passes through.
func notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicate)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
