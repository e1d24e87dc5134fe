package zosmf

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
)

var errNoSessionToken = errors.New("reply carries no session token")

type basicCredentials struct {
	user     string
	password string
}

func basicAuth(r endpoint.Request, b *AuthenticateBuilder) endpoint.Request {
	raw := b.credentials.user + ":" + b.credentials.password
	return r.WithHeader("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(raw)))
}

// Session is the credential z/OSMF issued on login. A JWT is preferred
// over an LTPA token when the server sets both.
type Session struct {
	Token endpoint.Token
}

func (Session) TryFromResponse(resp *http.Response) (Session, error) {
	var ltpa string
	for _, c := range resp.Cookies() {
		switch c.Name {
		case endpoint.TokenJWT.String():
			if c.Value != "" {
				return Session{Token: endpoint.Token{Kind: endpoint.TokenJWT, Value: c.Value}}, nil
			}
		case endpoint.TokenLTPA2.String():
			ltpa = c.Value
		}
	}
	if ltpa == "" {
		return Session{}, errNoSessionToken
	}
	return Session{Token: endpoint.Token{Kind: endpoint.TokenLTPA2, Value: ltpa}}, nil
}

// Info describes a z/OSMF instance.
type Info struct {
	APIVersion  string   `json:"api_version"`
	ZOSVersion  string   `json:"zos_version"`
	Version     string   `json:"zosmf_version"`
	FullVersion string   `json:"zosmf_full_version,omitempty"`
	Hostname    string   `json:"zosmf_hostname"`
	Port        string   `json:"zosmf_port"`
	SAFRealm    string   `json:"zosmf_saf_realm"`
	Plugins     []Plugin `json:"plugins"`
}

func (Info) TryFromResponse(resp *http.Response) (Info, error) {
	return endpoint.DecodeJSON[Info](resp)
}

// Plugin is a z/OSMF plug-in.
type Plugin struct {
	DefaultName string `json:"pluginDefaultName"`
	Version     string `json:"pluginVersion"`
	Status      string `json:"pluginStatus,omitempty"`
}
