package server

const (
	// BasicAuthRealm is sent with every 401 basic-auth challenge
	BasicAuthRealm = `Basic realm="planx"`

	// ContentTypeXML is the content type of a successful export
	ContentTypeXML = "application/xml;charset=utf8"

	// FormFieldPlan is the multipart field the planning tool posts the
	// plan document under
	FormFieldPlan = "frePPLe plan"

	// DatabaseNameRegex restricts tenant database names
	DatabaseNameRegex = `^[A-Za-z0-9][A-Za-z0-9_\-]*$`

	MsgLoginRequired   = "Login with user name and password"
	MsgInvalidCompany  = "Invalid company name argument"
	MsgInvalidWebToken = "Incorrect or missing webtoken"
	MsgExportFailed    = "Error generating planning XML data: check the server log file for more details"
	MsgImportFailed    = "Error processing posted planning data: check the server log file for more details"
)
