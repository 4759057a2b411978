package surface

import "errors"

var (
	// ErrSurfaceNotFound возвращается, когда покрытие не найдено
	ErrSurfaceNotFound = errors.New("surface.repository: surface not found")

	// ErrSurfaceExists возвращается при попытке создать покрытие с занятым именем
	ErrSurfaceExists = errors.New("surface.repository: surface already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("surface.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("surface.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("surface.repository: failed to scan row")
)
