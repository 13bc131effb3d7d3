package errors

// Helper to get error code
func GetCode(err error) string {
	if ngErr, ok := err.(*Error); ok {
		return ngErr.Code.String()
	}
	return ""
}
