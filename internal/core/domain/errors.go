package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrProductNotFound = errors.New("product not found")
var ErrSupplierNotFound = errors.New("supplier not found")
