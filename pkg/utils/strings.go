package utils

// RemoveEmptyStrings drops empty entries, e.g. from a comma-split CORS
// origin list where a trailing comma leaves a blank element.
func RemoveEmptyStrings(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
