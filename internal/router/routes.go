// Package router holds the panel's route table, the navigation menu and the
// access guards.
package router

import "strings"

const (
	RootPath       = "/"
	LoginPath      = "/login"
	RegisterPath   = "/register"
	LogoutPath     = "/logout"
	DashboardPath  = "/dashboard"
	EmployeesPath  = "/dashboard/employees"
	WorkplacesPath = "/dashboard/workplaces"
	CostsPath      = "/dashboard/costs"
	RevenuesPath   = "/dashboard/revenues"
	SchedulesPath  = "/dashboard/schedules"
	ReportsPath    = "/dashboard/reports"
	ProfilePath    = "/dashboard/profile"
)

// Access says who may open a route.
type Access int

const (
	// Public routes are for anonymous sessions only.
	Public Access = iota
	// Private routes need a signed-in session.
	Private
)

// Layout breakpoints in CSS pixels. Below the breakpoint a screen renders cards instead of a table.
const (
	BreakpointSM = 600
	BreakpointMD = 900
)

// Route is one entry of the route table.
type Route struct {
	Path       string
	Title      string
	Icon       string
	Access     Access
	Breakpoint int
	InMenu     bool
}

// Routes is the route table, in menu order.
var Routes = []Route{
	{Path: LoginPath, Title: "Logowanie", Access: Public},
	{Path: RegisterPath, Title: "Rejestracja", Access: Public},
	{Path: DashboardPath, Title: "Panel główny", Icon: "dashboard", Access: Private, InMenu: true},
	{Path: EmployeesPath, Title: "Pracownicy", Icon: "people", Access: Private, Breakpoint: BreakpointMD, InMenu: true},
	{Path: WorkplacesPath, Title: "Miejsca pracy", Icon: "business", Access: Private, Breakpoint: BreakpointMD, InMenu: true},
	{Path: CostsPath, Title: "Koszty", Icon: "payments", Access: Private, Breakpoint: BreakpointMD, InMenu: true},
	{Path: RevenuesPath, Title: "Przychody", Icon: "trending_up", Access: Private, Breakpoint: BreakpointMD, InMenu: true},
	{Path: SchedulesPath, Title: "Grafik", Icon: "event", Access: Private, Breakpoint: BreakpointSM, InMenu: true},
	{Path: ReportsPath, Title: "Raporty", Icon: "assessment", Access: Private, Breakpoint: BreakpointSM, InMenu: true},
	{Path: ProfilePath, Title: "Mój profil", Icon: "person", Access: Private, InMenu: true},
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	path = normalize(path)
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// NavItem is an entry of the side menu.
type NavItem struct {
	Label  string
	Path   string
	Icon   string
	Active bool
}

// NavItems returns the side menu with the entry for currentPath marked active.
// Sub-paths activate their screen; the dashboard entry only matches itself.
func NavItems(currentPath string) []NavItem {
	currentPath = normalize(currentPath)
	items := make([]NavItem, 0, len(Routes))
	for _, r := range Routes {
		if !r.InMenu {
			continue
		}
		active := currentPath == r.Path
		if !active && r.Path != DashboardPath {
			active = strings.HasPrefix(currentPath, r.Path+"/")
		}
		items = append(items, NavItem{Label: r.Title, Path: r.Path, Icon: r.Icon, Active: active})
	}
	return items
}

// UseCards reports whether a screen with breakpoint renders cards at width.
func UseCards(width, breakpoint int) bool {
	return breakpoint > 0 && width < breakpoint
}

func normalize(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return RootPath
	}
	return path
}
