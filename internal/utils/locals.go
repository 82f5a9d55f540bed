package utils

import "github.com/gofiber/fiber/v3"

func SetLocals(c fiber.Ctx, name string, data any) {
	c.Locals(name, data)
}

// GetLocals returns the value stored under name when it has type T.
func GetLocals[T any](c fiber.Ctx, name string) (T, bool) {
	value, ok := c.Locals(name).(T)
	return value, ok
}
