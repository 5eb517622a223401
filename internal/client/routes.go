package client

import "fmt"

// RouteName identifies a client screen.
type RouteName string

const (
	RouteHome   RouteName = "home"
	RouteLobby  RouteName = "lobby"
	RoutePlayer RouteName = "player"
	RouteGame   RouteName = "game"
	// RouteHost is the legacy host URL, aliased to the lobby route.
	RouteHost RouteName = "host"
)

// Route is a destination plus its parameters. JoinPrefill survives a
// redirect to home so a shared link's code still lands in the join form.
type Route struct {
	Name        RouteName
	Code        string
	JoinPrefill string
}

func Home() Route                    { return Route{Name: RouteHome} }
func HomeWithJoin(code string) Route { return Route{Name: RouteHome, JoinPrefill: code} }
func Lobby(code string) Route        { return Route{Name: RouteLobby, Code: code} }
func PlayerLobby(code string) Route  { return Route{Name: RoutePlayer, Code: code} }
func Game(code string) Route         { return Route{Name: RouteGame, Code: code} }
func HostRoute(code string) Route    { return Route{Name: RouteHost, Code: code} }

// Path renders the route as a URL path.
func (r Route) Path() string {
	switch r.Name {
	case RouteLobby:
		return "/lobby/" + r.Code
	case RoutePlayer:
		return "/join/" + r.Code
	case RouteGame:
		return "/game/" + r.Code
	case RouteHost:
		return "/host/" + r.Code
	default:
		if r.JoinPrefill != "" {
			return fmt.Sprintf("/?join=%s", r.JoinPrefill)
		}
		return "/"
	}
}
