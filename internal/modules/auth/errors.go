package auth

import "errors"

var (
	ErrUserNotFound      = errors.New("user-not-found")
	ErrWrongPassword     = errors.New("wrong-password")
	ErrTooManyRequests   = errors.New("too-many-requests")
	ErrInvalidEmail      = errors.New("invalid-email")
	ErrUserDisabled      = errors.New("user-disabled")
	ErrExpiredActionCode = errors.New("expired-action-code")
	ErrInvalidActionCode = errors.New("invalid-action-code")
	ErrWeakPassword      = errors.New("weak-password")
)

// userMessages maps the identity error vocabulary to the German strings
// shown in the portal.
var userMessages = map[error]string{
	ErrUserNotFound:      "Benutzer nicht gefunden",
	ErrWrongPassword:     "Falsches Passwort",
	ErrTooManyRequests:   "Zu viele Versuche. Bitte später erneut versuchen",
	ErrInvalidEmail:      "Ungültige E-Mail-Adresse",
	ErrUserDisabled:      "Dieses Benutzerkonto ist deaktiviert",
	ErrExpiredActionCode: "Der Link ist abgelaufen. Bitte fordern Sie einen neuen an",
	ErrInvalidActionCode: "Ungültiger oder bereits verwendeter Code",
	ErrWeakPassword:      "Das Passwort muss mindestens 6 Zeichen lang sein",
}

// UserMessage returns the localized message for an identity error, or a
// generic fallback for anything unexpected.
func UserMessage(err error) string {
	for sentinel, msg := range userMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Ein unerwarteter Fehler ist aufgetreten"
}
