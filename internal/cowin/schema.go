// internal/cowin/schema.go
package cowin

// calendarSchema describes the shape expected from the calendarByDistrict
// endpoint. The centers key itself is optional because the API answers {}
// for districts with no listed centers; every center and session that is
// present must carry the full field set.
var calendarSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"centers": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"required": []string{
					"center_id", "name", "address", "pincode", "fee_type", "sessions",
				},
				"properties": map[string]interface{}{
					"center_id": map[string]interface{}{"type": "number"},
					"name":      map[string]interface{}{"type": "string"},
					"address":   map[string]interface{}{"type": "string"},
					"pincode":   map[string]interface{}{"type": "number"},
					"fee_type":  map[string]interface{}{"type": "string"},
					"sessions": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"required": []string{
								"date", "available_capacity", "min_age_limit",
								"vaccine", "available_capacity_dose1", "available_capacity_dose2",
							},
							"properties": map[string]interface{}{
								"date":                     map[string]interface{}{"type": "string"},
								"available_capacity":       map[string]interface{}{"type": "number"},
								"min_age_limit":            map[string]interface{}{"type": "number"},
								"vaccine":                  map[string]interface{}{"type": "string"},
								"available_capacity_dose1": map[string]interface{}{"type": "number"},
								"available_capacity_dose2": map[string]interface{}{"type": "number"},
							},
						},
					},
				},
			},
		},
	},
}
