package source

import (
	"encoding/json"

	"github.com/contaplus/cxc/internal/apierror"
)

// UnwrapList extracts the list of records from a response body. The first
// present and non-empty of "data" and "items" is taken as the payload; an
// object with neither, or a bare JSON array, is its own payload. Scalars
// such as null, false, 0 and "" count as absent.
//
// A payload that is not a list yields an empty list and an
// UnexpectedResponseShapeError, even when a later key holds one. An empty
// body is treated as an empty list.
func UnwrapList(body []byte) ([]interface{}, error) {
	if len(body) == 0 {
		return []interface{}{}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return []interface{}{}, &apierror.UnexpectedResponseShapeError{Reason: "body is not valid JSON", Body: string(body)}
	}

	payload := decoded
	if obj, ok := decoded.(map[string]interface{}); ok {
		for _, key := range []string{"data", "items"} {
			if present(obj[key]) {
				payload = obj[key]
				break
			}
		}
	}

	switch v := payload.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		return []interface{}{}, &apierror.UnexpectedResponseShapeError{Reason: "payload is an object, not a list", Body: string(body)}
	default:
		return []interface{}{}, &apierror.UnexpectedResponseShapeError{Reason: "payload is neither a list nor an object", Body: string(body)}
	}
}

func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	}
	return true
}
