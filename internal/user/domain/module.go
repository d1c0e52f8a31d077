package domain

import "slices"

// Product modules a user can switch between.
const (
	ModuleProspects = "prospects"
	ModuleTasks     = "tasks"
	ModuleCashflow  = "cashflow"
	ModuleContent   = "content"
	ModuleInventory = "inventory"
)

// DefaultModule is assigned to every new account.
const DefaultModule = ModuleProspects

var allowedModules = []string{ModuleProspects, ModuleTasks, ModuleCashflow, ModuleContent, ModuleInventory}

// AllowedModules returns the selectable modules in display order.
func AllowedModules() []string {
	return slices.Clone(allowedModules)
}

// IsAllowedModule reports whether m is a selectable module.
func IsAllowedModule(m string) bool {
	return slices.Contains(allowedModules, m)
}

// EnableModule returns enabled with m appended if not already present.
func EnableModule(enabled []string, m string) []string {
	if slices.Contains(enabled, m) {
		return enabled
	}
	return append(slices.Clone(enabled), m)
}
