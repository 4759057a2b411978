package gametype

import "errors"

var (
	// ErrGameTypeNotFound возвращается, когда тип игры не найден
	ErrGameTypeNotFound = errors.New("gametype.repository: game type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("gametype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("gametype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("gametype.repository: failed to scan row")
)
