package contextkeys

// Custom type so the key cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB is stored.
const DBContextKey = contextKey("db")
