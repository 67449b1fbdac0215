package model

// Version is the LibRML markup version written to the root element.
const Version = "0.2"

// Document keys and item attributes.
const (
	FieldType         = "type"
	FieldID           = "id"
	FieldTenant       = "tenant"
	FieldMention      = "mention"
	FieldShareAlike   = "sharealike"
	FieldUsageGuide   = "usageguide"
	FieldTemplate     = "template"
	FieldActions      = "actions"
	FieldPermission   = "permission"
	FieldRestrictions = "restrictions"
)

// Restriction fields. The same literal is used as document key and as markup
// attribute; list-valued fields become child elements in markup (see Tag*).
const (
	FieldParts         = "parts"
	FieldGroups        = "groups"
	FieldMinAge        = "minage"
	FieldInside        = "inside"
	FieldOutside       = "outside"
	FieldSubnet        = "subnet"
	FieldMachines      = "machines"
	FieldFromDate      = "fromdate"
	FieldToDate        = "todate"
	FieldDuration      = "duration"
	FieldCount         = "count"
	FieldSessions      = "sessions"
	FieldWatermark     = "watermarkvalue"
	FieldCommercial    = "commercialuse"
	FieldNonCommercial = "noncommercialuse"
	FieldMaxResolution = "maxresolution"
	FieldMaxBitrate    = "maxbitrate"
)

// Markup element names.
const (
	TagRoot        = "libRML"
	TagItem        = "item"
	TagAction      = "action"
	TagRestriction = "restriction"
	TagPart        = "part"
	TagGroup       = "group"
	TagSubnet      = "subnet"
	TagMachine     = "machine"
	AttrVersion    = "version"
)
