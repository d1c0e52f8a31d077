package audit

import (
	"net/http"
	"strings"
)

// ActionResource holds action and resource derived from an HTTP route.
type ActionResource struct {
	Action   string
	Resource string
}

// Route overrides for endpoints whose verb does not describe what they do.
var routeOverrides = map[string]ActionResource{
	http.MethodPost + " /api/settings/modules": {Action: "module_changed", Resource: "settings"},
}

// ParseRoute returns action and resource for an HTTP method and route pattern
// (e.g. PATCH /api/prospects/:id). Action is get, list, create, update, delete, or the
// lowercase method for others. Resource is the singular of the last static path segment
// with dashes turned into underscores (task-categories -> task_category).
func ParseRoute(method, route string) ActionResource {
	if ar, ok := routeOverrides[method+" "+route]; ok {
		return ar
	}
	segments := strings.Split(strings.Trim(route, "/"), "/")
	resource := ""
	hasParam := false
	for _, s := range segments {
		if s == "" || s == "api" {
			continue
		}
		if strings.HasPrefix(s, ":") || s == "*" {
			hasParam = true
			continue
		}
		resource = s
	}
	if resource == "" {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	return ActionResource{Action: methodToAction(method, hasParam), Resource: singular(resource)}
}

func methodToAction(method string, hasParam bool) string {
	switch method {
	case http.MethodGet:
		if hasParam {
			return "get"
		}
		return "list"
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return strings.ToLower(method)
	}
}

func singular(segment string) string {
	s := strings.ReplaceAll(segment, "-", "_")
	switch {
	case strings.HasSuffix(s, "ies"):
		return strings.TrimSuffix(s, "ies") + "y"
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return strings.TrimSuffix(s, "s")
	default:
		return s
	}
}

// IsMutation reports whether method changes server state and should be audited.
func IsMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
