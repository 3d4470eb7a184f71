// ABOUTME: Best-effort current weather lookup by UK postcode via OpenWeatherMap.
// ABOUTME: Responses are cached in memory with freecache.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// example API call
// https://api.openweathermap.org/data/2.5/weather?zip=SW1A%201AA,GB&appid=KEY&units=metric

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultCountry = "GB"

	oneHour            = 60 * 60
	weatherCacheExpire = oneHour
)

var (
	// ErrUnsupportedLocation is returned when a location holds no postcode.
	ErrUnsupportedLocation = errors.New("location has no postcode")
	// ErrUnavailable covers transport failures and non-200 responses.
	ErrUnavailable = errors.New("weather unavailable")
)

// postcodeRe matches a full UK postcode such as "SW1A 1AA".
var postcodeRe = regexp.MustCompile(`[A-Z]{1,2}[0-9R][0-9A-Z]?\s[0-9][A-Z]{2}`)

// Conditions is the current weather at a run's location.
type Conditions struct {
	TemperatureC float64 `json:"temperature_c"`
	PressureHPa  float64 `json:"pressure_hpa"`
}

// Provider looks up current conditions for a free-text location.
type Provider interface {
	Current(ctx context.Context, location string) (*Conditions, error)
}

// apiResponse is the subset of the OpenWeatherMap current weather payload we read.
type apiResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Name string `json:"name"`
}

// Api is an OpenWeatherMap Provider.
type Api struct {
	cache      *freecache.Cache
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
}

// Compile-time check that Api implements Provider.
var _ Provider = (*Api)(nil)

// NewApi creates a weather client. An empty baseURL or country falls back to
// the OpenWeatherMap defaults; a nil httpClient gets a 5s timeout client.
func NewApi(baseURL, apiKey, country string, cacheSizeMegabytes int, httpClient *http.Client) *Api {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if country == "" {
		country = DefaultCountry
	}
	if cacheSizeMegabytes <= 0 {
		cacheSizeMegabytes = 1
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	megabyte := 1024 * 1024
	return &Api{
		cache:      freecache.NewCache(cacheSizeMegabytes * megabyte),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		country:    country,
		httpClient: httpClient,
	}
}

// Postcode extracts the first UK postcode from a location, upper-cased.
func Postcode(location string) (string, bool) {
	pc := postcodeRe.FindString(strings.ToUpper(location))
	return pc, pc != ""
}

// Current returns the current conditions for the postcode in location.
func (w *Api) Current(ctx context.Context, location string) (*Conditions, error) {
	postcode, ok := Postcode(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocation, location)
	}

	cacheKey := fmt.Sprintf("current::%s::%s", w.country, postcode)
	if cached, err := w.cache.Get([]byte(cacheKey)); err == nil {
		conditions := &Conditions{}
		if err := json.Unmarshal(cached, conditions); err == nil {
			log.Tracef("found current weather for %s in cache", postcode)
			return conditions, nil
		} else {
			log.Errorf("failed to unmarshal current weather from cache for %s: %s", postcode, err)
		}
	}

	query := url.Values{}
	query.Set("zip", postcode+","+w.country)
	query.Set("appid", w.apiKey)
	query.Set("units", "metric")
	weatherApiUrl := w.baseURL + "/weather?" + query.Encode()
	log.Debugf("calling weather api for %s", postcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherApiUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http client do: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %w", ErrUnavailable, err)
	}

	conditions := &Conditions{
		TemperatureC: apiResp.Main.Temp,
		PressureHPa:  apiResp.Main.Pressure,
	}

	if encoded, err := json.Marshal(conditions); err == nil {
		if err := w.cache.Set([]byte(cacheKey), encoded, weatherCacheExpire); err != nil {
			log.Errorf("failed to write current weather cache for %s: %s", postcode, err)
		}
	}

	return conditions, nil
}
