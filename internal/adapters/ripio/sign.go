package ripio

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tradewire/ripio/config"
	"github.com/tradewire/ripio/errs"
	"github.com/tradewire/ripio/internal/runtime"
)

// Signer turns an endpoint id plus parameters into a fully built wire
// request. It performs no I/O; the output is executed verbatim by the runtime
// transport.
type Signer struct {
	exchange    string
	publicBase  string
	privateBase string
	credentials config.Credentials
	style       config.AuthStyle
}

// NewSigner constructs a signer for the given venue settings.
func NewSigner(exchange string, settings config.ExchangeSettings) *Signer {
	return &Signer{
		exchange:    exchange,
		publicBase:  strings.TrimSuffix(strings.TrimSpace(settings.PublicBaseURL), "/"),
		privateBase: strings.TrimSuffix(strings.TrimSpace(settings.PrivateBaseURL), "/"),
		credentials: settings.Credentials,
		style:       settings.AuthStyle,
	}
}

// Build resolves the endpoint, substitutes path placeholders from params,
// serializes the leftover params (JSON body for private POST/DELETE, query
// string otherwise), and attaches authentication for private endpoints.
func (s *Signer) Build(id EndpointID, params map[string]any) (runtime.Request, error) {
	spec, ok := endpointRegistry[id]
	if !ok {
		return runtime.Request{}, errs.New(s.exchange, errs.CodeInvalid,
			errs.WithMessage("unknown endpoint id"),
			errs.WithVenueField("endpoint", string(id)))
	}

	path, leftover, err := s.implodePath(spec.path, params)
	if err != nil {
		return runtime.Request{}, err
	}

	base := s.publicBase
	if spec.auth == authPrivate {
		base = s.privateBase
	}
	fullURL := base + "/" + path

	req := runtime.Request{
		URL:    fullURL,
		Method: spec.method,
		Header: nil,
		Body:   nil,
	}

	if spec.auth == authPublic {
		if query := encodeQuery(leftover); query != "" {
			req.URL += "?" + query
		}
		return req, nil
	}

	if !s.credentials.Configured() {
		return runtime.Request{}, errs.New(s.exchange, errs.CodeAuth,
			errs.WithMessage("private endpoint requires an api key"),
			errs.WithCanonicalCode(errs.CanonicalAuthentication),
			errs.WithVenueField("endpoint", string(id)))
	}

	if spec.method == http.MethodPost || spec.method == http.MethodDelete {
		if len(leftover) > 0 {
			body, err := json.Marshal(leftover)
			if err != nil {
				return runtime.Request{}, fmt.Errorf("encode request body: %w", err)
			}
			req.Body = body
		}
	} else if query := encodeQuery(leftover); query != "" {
		req.URL += "?" + query
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	switch s.style {
	case config.AuthStyleBearer:
		header.Set("Authorization", "Bearer "+s.credentials.APIKey)
	default:
		header.Set("x-api-key", s.credentials.APIKey)
	}
	req.Header = header
	return req, nil
}

// implodePath substitutes {placeholder} segments from params, returning the
// resolved path and the parameters that were not consumed.
func (s *Signer) implodePath(path string, params map[string]any) (string, map[string]any, error) {
	leftover := make(map[string]any, len(params))
	for k, v := range params {
		leftover[k] = v
	}
	var out strings.Builder
	rest := path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			out.WriteString(rest)
			break
		}
		name := rest[open+1 : open+closing]
		value, ok := leftover[name]
		if !ok {
			return "", nil, errs.New(s.exchange, errs.CodeInvalid,
				errs.WithMessage("missing path parameter"),
				errs.WithVenueField("param", name))
		}
		out.WriteString(rest[:open])
		out.WriteString(url.PathEscape(paramString(value)))
		delete(leftover, name)
		rest = rest[open+closing+1:]
	}
	return out.String(), leftover, nil
}

func encodeQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, paramString(v))
	}
	return values.Encode()
}

func paramString(v any) string {
	switch typed := v.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
