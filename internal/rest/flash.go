package rest

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	flashCookie = "article_flash"
	// browsers drop cookies above 4KB
	maxFlashSize = 3800
)

// flash carries a rejected form across the redirect back to it.
type flash struct {
	Form   ArticleForm `json:"form"`
	Errors FormErrors  `json:"errors"`
}

func encodeFlash(f flash) (string, error) {
	value, err := marshalFlash(f)
	if err != nil || len(value) <= maxFlashSize {
		return value, err
	}

	// keep the short fields and the messages
	f.Form.Content = ""
	f.Form.Description = ""
	value, err = marshalFlash(f)
	if err != nil {
		return "", err
	} else if len(value) > maxFlashSize {
		return "", errors.New("flash is too large")
	}

	return value, nil
}

func marshalFlash(f flash) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeFlash(value string) (*flash, error) {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}

	var f flash
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

func setFlash(c echo.Context, f flash) error {
	value, err := encodeFlash(f)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// popFlash returns the flash of the request, if any, and expires the cookie.
func popFlash(c echo.Context) *flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	f, err := decodeFlash(cookie.Value)
	if err != nil {
		return nil
	}

	return f
}
