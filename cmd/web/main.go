package main

import (
	"fellowship_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	app.Run()
}
