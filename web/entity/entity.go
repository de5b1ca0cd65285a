// Package entity defines data structures shared by the web layer.
package entity

// Flash is a one-shot user-visible message, popped from the session on the
// next rendered page. Category is a bootstrap alert class: "success" or
// "danger".
type Flash struct {
	Category string
	Content  string
}
