package entity

// AppState is the whole durable aggregate: the menu catalog, every
// bill ever issued, and the credit registry. It is loaded once at
// startup and written back wholesale after every mutation.
//
// By convention every mutation replaces the aggregate (copy-on-write
// transforms) rather than editing fields in place; nothing may hold a
// pointer into a published AppState and mutate through it.
type AppState struct {
	Menu      []MenuItem `json:"menu"`
	Bills     []Bill     `json:"bills"`
	Customers []Customer `json:"customers"`
}
