package cookie

import (
	"net/http"
	"time"
)

// Cookie names for the two session kinds. Login only ever sets the user
// cookie; the admin cookie is set by the admin surface and cleared here
// on logout.
const (
	UserSessionCookie  = "userAccessToken"
	AdminSessionCookie = "adminAccessToken"
)

// SessionMaxAge is how long a session cookie stays valid.
const SessionMaxAge = 7 * 24 * time.Hour

// sessionCookie builds a cookie with the attributes shared by set and
// clear. Browsers silently ignore a clear whose attributes don't match
// the original set, so both paths must go through here.
func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   maxAge,
	}
}

// SetUserSession sets the user session cookie.
func SetUserSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, sessionCookie(UserSessionCookie, token, int(SessionMaxAge.Seconds())))
}

// ClearUserSession removes the user session cookie.
func ClearUserSession(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie(UserSessionCookie, "", -1))
}

// ClearAdminSession removes the admin session cookie.
func ClearAdminSession(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie(AdminSessionCookie, "", -1))
}

// GetUserSession retrieves the user session cookie value from the request.
func GetUserSession(r *http.Request) (string, error) {
	c, err := r.Cookie(UserSessionCookie)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}
