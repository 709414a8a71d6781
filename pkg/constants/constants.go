package constants

const (
	AppName          = "statusdrafter"
	Version          = "0.3.0"
	ConfigFileName   = "config.yml"
	SqliteDbFileName = "drafts.db"
	APIBase          = "/api"
)

// sqlite CURRENT_TIMESTAMP layout, always UTC
const SqliteTimeLayout = "2006-01-02 15:04:05"

const (
	ProjectsTableName  = "projects"
	ProjectsIdColumn   = "id"
	ProjectsNameColumn = "name"
)

const (
	RolesTableName       = "roles"
	RolesIdColumn        = "id"
	RolesProjectIdColumn = "project_id"
	RolesNameColumn      = "name"
)

const (
	DraftsTableName         = "drafts"
	DraftsIdColumn          = "id"
	DraftsTypeColumn        = "type"
	DraftsContentColumn     = "content"
	DraftsProjectIdColumn   = "project_id"
	DraftsRoleIdColumn      = "role_id"
	DraftsCreatedAtColumn   = "created_at"
	DraftsProjectNameColumn = "project_name"
	DraftsRoleNameColumn    = "role_name"
)

const (
	DefaultDraftsLimit    = 50
	HistoryDraftsLimit    = 5
	DashboardDraftsLimit  = 100
	SchemaMigrationsTable = "schema_migrations"
)
