package i18n

// Message keys. Each key is also the English format string.
const (
	MenuTitle        = "\n--- Menu ---"
	MenuCreateLeague = "1. Create league"
	MenuExit         = "2. Exit"
	MenuCountTeams   = "1. Count teams"
	MenuListTeams    = "2. Participating teams"
	MenuExportReport = "3. Create txt"
	MenuLeaveSession = "4. Exit"
	PromptOption     = "Select an option: "
	InvalidNumber    = "Enter a valid number."
	InvalidOption    = "Invalid option. Try again."
	InvalidIndex     = "Enter a valid index."
	Goodbye          = "Exiting the program. Goodbye!"

	CatalogLine     = "%d. %s"
	PromptLeague    = "\nSelect a league by its number: "
	OutOfRange      = "Number out of range. Try again."
	LeagueSelected  = "\nSelected league: %s"
	DataLoaded      = "Data loaded into %s"
	CatalogError    = "Error: %v"
	FetchFailed     = "Could not fetch the league data: %v"
	SaveFailed      = "Could not save the league data: %v"
	CacheNotFound   = "The file '%s' was not found."
	TeamCount       = "\nNumber of teams: %d Teams."
	UnexpectedShape = "The JSON file does not have the expected format."
	BadlyRead       = "The file could not be read properly."
	ReportSaved     = "Information saved to %s"
	ReportFailed    = "Could not write %s: %v"

	LabelLeague  = "League name"
	LabelTeam    = "Team"
	LabelCode    = "Code"
	LabelCountry = "City"
)

var spanish = map[string]string{
	MenuTitle:        "\n--- Menú ---",
	MenuCreateLeague: "1. Crear Liga",
	MenuExit:         "2. Salir",
	MenuCountTeams:   "1. Contar Equipos",
	MenuListTeams:    "2. Equipos que Participan",
	MenuExportReport: "3. Crear Txt",
	MenuLeaveSession: "4. Salir",
	PromptOption:     "Seleccione una opción: ",
	InvalidNumber:    "Ingrese un número válido.",
	InvalidOption:    "Opción no válida. Intente de nuevo.",
	InvalidIndex:     "Ingresa un índice válido.",
	Goodbye:          "Saliendo del programa. ¡Hasta luego!",

	CatalogLine:     "%d. %s",
	PromptLeague:    "\nSeleccione una liga por su número: ",
	OutOfRange:      "Número fuera de rango. Intente de nuevo.",
	LeagueSelected:  "\nLiga seleccionada: %s",
	DataLoaded:      "Datos cargados en %s",
	CatalogError:    "Error: %v",
	FetchFailed:     "No se pudieron obtener los datos de la liga: %v",
	SaveFailed:      "No se pudieron guardar los datos de la liga: %v",
	CacheNotFound:   "El archivo '%s' no encontrado.",
	TeamCount:       "\nNúmero de equipos: %d Equipos.",
	UnexpectedShape: "El archivo JSON no tiene el formato esperado.",
	BadlyRead:       "El archivo está mal leído.",
	ReportSaved:     "Información guardada en %s",
	ReportFailed:    "No se pudo escribir %s: %v",

	LabelLeague:  "Nombre de la Liga",
	LabelTeam:    "Equipo",
	LabelCode:    "Código",
	LabelCountry: "Ciudad",
}
