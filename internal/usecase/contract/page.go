package usecasecontract

// Page is a paginated result. Pages is ceil(Total/limit) for the limit the
// page was requested with.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Pages int
}
