package transport

import "github.com/labstack/echo/v4"

// Response is the JSON envelope every endpoint speaks:
// {success, data?, error?, code?}.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Response{Success: false, Error: msg})
}

func FailCode(c echo.Context, status int, msg, code string) error {
	return c.JSON(status, Response{Success: false, Error: msg, Code: code})
}
