package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOT_FOUND         = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_PAYMENT_REQUIRED  = "error.payment_required"
	ERROR_EXIST             = "error.exist"
	ERROR_FORBIDDEN         = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"

	ERROR_INVALID_TOKEN   = "error.invalid.token"
	ERROR_INVALID_ACCOUNT = "error.invalid.account"

	ERROR_EMAIL_ALREADY_REGISTED = "error.email_has_already_registed"
	ERROR_ENTRY_LIMIT_REACHED    = "error.usage.entry_limit_reached"
	ERROR_TEMPLATE_LIMIT_REACHED = "error.usage.template_limit_reached"
	ERROR_ALREADY_LIKED          = "error.template.already_liked"
	ERROR_GOAL_INVALID_PERIOD    = "error.goal.invalid_period"
	ERROR_WEBHOOK_SIGNATURE      = "error.billing.webhook_signature"
	ERROR_AUDIO_TYPE_UNSUPPORT   = "error.audio.type.unsupport"
	ERROR_IMAGE_TYPE_UNSUPPORT   = "error.image.type.unsupport"
)
