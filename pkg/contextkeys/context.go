package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы храним *gorm.DB (пул или транзакцию) в context
const DBContextKey = contextKey("db")
