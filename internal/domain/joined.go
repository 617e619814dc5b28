package domain

// JoinedToken is a registry entry merged with its marketplace trading
// summary. Trading is nil when the token has never traded on the
// marketplace (left join).
type JoinedToken struct {
	RealToken
	Trading *YamToken `json:"yam,omitempty"`
}
