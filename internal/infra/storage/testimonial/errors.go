package testimonial

import "errors"

var (
	// ErrTestimonialNotFound возвращается, когда отзыв не найден
	ErrTestimonialNotFound = errors.New("testimonial.repository: testimonial not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("testimonial.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("testimonial.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("testimonial.repository: failed to scan row")
)
