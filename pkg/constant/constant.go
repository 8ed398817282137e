package constant

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	// SubjectAccess and SubjectRefresh tag the two token kinds; only the
	// refresh and logout endpoints accept SubjectRefresh tokens.
	SubjectAccess  = "accessToken"
	SubjectRefresh = "refreshToken"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RefreshTokenHeader  = "Refresh-Token"
)

// IdentityLocalsKey is the fiber locals key under which the verification
// gate stores the resolved identity for the current request.
const IdentityLocalsKey = "identity"

// MinSigningKeyBytes is the minimum accepted HMAC key length.
const MinSigningKeyBytes = 32
