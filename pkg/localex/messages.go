package localex

// MessageKey names a short, user-visible notice carried on redirects.
type MessageKey string

const (
	MsgLoginRequired MessageKey = "login_required"
	MsgForbidden     MessageKey = "forbidden"
	MsgLoggedOut     MessageKey = "logged_out"
	MsgLoginFailed   MessageKey = "login_failed"
	MsgTOTPRequired  MessageKey = "totp_required"
)

var messages = map[MessageKey]map[Locale]string{
	MsgLoginRequired: {
		Albanian: "Ju lutemi identifikohuni për të vazhduar",
		English:  "Please sign in to continue",
	},
	MsgForbidden: {
		Albanian: "Nuk keni leje për të parë këtë faqe",
		English:  "You do not have permission to view this page",
	},
	MsgLoggedOut: {
		Albanian: "Jeni çkyçur me sukses",
		English:  "You have been signed out",
	},
	MsgLoginFailed: {
		Albanian: "Email ose fjalëkalim i pasaktë",
		English:  "Incorrect email or password",
	},
	MsgTOTPRequired: {
		Albanian: "Kërkohet kodi i verifikimit",
		English:  "A verification code is required",
	},
}

// Message returns the localized text for key. Unknown keys return the key
// itself so a missing translation degrades visibly rather than silently.
func Message(loc Locale, key MessageKey) string {
	byLocale, ok := messages[key]
	if !ok {
		return string(key)
	}
	if msg, ok := byLocale[loc]; ok {
		return msg
	}
	return byLocale[Default]
}
