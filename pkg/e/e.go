package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownCatalogSource = fmt.Errorf("unknown catalog source")
	ErrUnknownCartStore     = fmt.Errorf("unknown cart store")

	// Ошибки хранилища корзин
	ErrCartConflict     = fmt.Errorf("cart was modified concurrently, retries exhausted")
	ErrCorruptedCart    = fmt.Errorf("corrupted cart data")
	ErrEmptySessionID   = fmt.Errorf("empty session id")
	ErrInvalidSessionID = fmt.Errorf("invalid session id")

	// Ошибки каталога
	ErrEmptyCatalog     = fmt.Errorf("catalog is empty")
	ErrDuplicateProduct = fmt.Errorf("duplicate product id")
	ErrNegativePrice    = fmt.Errorf("price must not be negative")

	// Ошибки БД
	ErrTransactionNotFound = fmt.Errorf("transaction not found in context")

	// 400 Bad Request
	ErrStatusBadRequest   = fmt.Errorf("bad request")
	ErrInvalidProductID   = fmt.Errorf("invalid product id")
	ErrInvalidRequestBody = fmt.Errorf("invalid request body")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
