package console

// Menu action names recorded in metrics.
const (
	actionCreateLeague = "create_league"
	actionExit         = "exit"
	actionCountTeams   = "count_teams"
	actionListTeams    = "list_teams"
	actionExportReport = "export_report"
	actionLeave        = "leave_session"
	actionInvalid      = "invalid"
)

const (
	topCreateLeague = 1
	topExit         = 2

	sessionCountTeams   = 1
	sessionListTeams    = 2
	sessionExportReport = 3
	sessionLeave        = 4
)
