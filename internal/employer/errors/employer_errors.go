package employererrors

import (
	"net/http"

	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

var ErrEmployerAlreadyExists = apperror.New(
	apperror.CodeConflict,
	"An employer with this business email is already registered",
	http.StatusConflict,
)
