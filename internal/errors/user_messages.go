package errors

// User-friendly error messages
const (
	MsgInvalidAcreage     = "Acreage values must be greater than zero, with minimum not exceeding maximum."
	MsgScrapedNotFound    = "Scraped property not found"
	MsgSavedNotFound      = "Saved property not found"
	MsgGISFeatureRequired = "Your plan does not include the GIS scraper feature."
	MsgServiceUnavailable = "We're unable to reach the property data source right now. Please try again in a few minutes."
	MsgRateLimited        = "You're making requests too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
