package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of the filter struct
// that are set in the query string.
//
// The query parameter for a field is read from its "form" struct tag.
// A parameter is set when it appears in the query string, even if its
// value is empty. This allows to tell zero values and unset parameters apart.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if param != "" && query.Has(param) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}
