package dynfmt

import "github.com/itsatony/go-dynfmt/internal"

// Sizing defaults
const (
	// DefaultPlaceholderEstimate is the number of output bytes reserved per placeholder.
	DefaultPlaceholderEstimate = internal.DefaultPlaceholderEstimate
	// DefaultCacheMaxEntries bounds the parse cache.
	DefaultCacheMaxEntries = 512
	// MaxAmount is the largest width or precision; larger dynamic amounts saturate.
	MaxAmount = internal.MaxAmount
)

// SentinelFill is the code point padding is laid down with before the
// caller's fill character is substituted.
const SentinelFill = internal.SentinelFill

// StrEmpty is returned alongside errors.
const StrEmpty = ""

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyKey      = "key"
	MetaKeyForm     = "form"
	MetaKeyRequired = "required"
	MetaKeyOffered  = "offered"
	MetaKeyReason   = "reason"
)

// Log message constants
const (
	LogMsgEngineCreated   = "engine created"
	LogMsgTemplateParsed  = "template parsed"
	LogMsgCacheHit        = "parse cache hit"
	LogMsgCacheMiss       = "parse cache miss"
	LogMsgBinderCreated   = "binder created"
	LogMsgBindAdded       = "argument bound"
	LogMsgBindRejected    = "argument rejected"
	LogMsgBindUnchecked   = "argument bound unchecked"
	LogMsgTemplateDecoded = "template decoded"
)

// Log field names
const (
	LogFieldKeys         = "key_count"
	LogFieldPlaceholders = "placeholder_count"
	LogFieldKey          = "key"
	LogFieldBundle       = "bundle"
	LogFieldForms        = "forms"
	LogFieldChecked      = "checked"
	LogFieldCache        = "parse_cache"
	LogFieldError        = "error"
)
