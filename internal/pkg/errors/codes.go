package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	// ErrInvalidQuery - некорректный proximity-запрос (нет origin, неизвестный
	// sort key). Никогда не заменяется молчаливым значением по умолчанию.
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid proximity query",
		http.StatusBadRequest,
	)

	// ErrInvalidRecord - запись каталога без координат и без настроенного
	// synthetic default для этого kind
	ErrInvalidRecord = New(
		"INVALID_RECORD",
		"Catalog record is missing required fields",
		http.StatusBadRequest,
	)

	ErrUnknownKind = New(
		"UNKNOWN_KIND",
		"Unknown catalog kind",
		http.StatusNotFound,
	)

	// ErrLocationUnavailable - платформа отказала в доступе или истёк таймаут.
	// Recoverable: вызывающая сторона сама решает, какой fallback применить.
	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Current location is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrPositionNotTracked = New(
		"POSITION_NOT_TRACKED",
		"No live position has been received yet",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
