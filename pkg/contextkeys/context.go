package contextkeys

// Custom type to avoid collisions with other packages' context keys.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or test
// transaction) travels through request contexts.
const DBContextKey = contextKey("db")
