package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath prefixes the JSON endpoints.
	APIPath = "/api"

	// LocalsProfileID is the fiber.Locals key holding the profile id of the request.
	LocalsProfileID = "profileID"

	// ErrNilACDFatalLogMsg is used if app or env pointers are nil.
	ErrNilACDFatalLogMsg = "app, cfg or generator is nil"

	// MsgInvalidParameters is returned when route parameters are missing.
	MsgInvalidParameters = "Invalid parameters"

	// MsgGenerationFailed is returned for unexpected render failures.
	MsgGenerationFailed = "Barcode generation failed"
)
