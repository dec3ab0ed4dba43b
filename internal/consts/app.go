package consts

const (
	ApplicationName    = "Admin Panel Server"
	ApplicationVersion = "v0.1.0"

	// TokenIssuer 签发运维令牌时写入的 iss
	TokenIssuer = "admin-panel-server"
)
