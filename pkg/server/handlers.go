package server

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/fetch"
	"github.com/arthur-debert/wifiprof/pkg/profile"
	"github.com/arthur-debert/wifiprof/pkg/render"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/gin-gonic/gin"
)

const (
	ProfilePath = "/hs20/profile.mobileconfig"
	ReturnPath  = "/hs20/return"

	msgProfileNotFound = "Profile not found"
	msgUnparsable      = "Unable to parse WiFi configuration"
	msgNoFile          = "No file selected"
	msgBadType         = "Invalid file type. Please upload a .mobileconfig file."
	msgInstalled       = "Profile installation finished. You can close this page and return to Settings."
)

// Device families recognised from the User-Agent
const (
	DeviceIOS     = "ios"
	DeviceAndroid = "android"
	DeviceUnknown = "unknown"
)

// DetectDevice guesses the client platform from its User-Agent
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return DeviceUnknown
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ios"):
		return DeviceIOS
	case strings.Contains(ua, "android"):
		return DeviceAndroid
	default:
		return DeviceUnknown
	}
}

// Index describes the server state for a landing page or script
type Index struct {
	ProfileExists bool           `json:"profile_exists"`
	ProfileURL    string         `json:"profile_url,omitempty"`
	ActiveProfile string         `json:"active_profile"`
	Profiles      []string       `json:"profiles"`
	DeviceType    string         `json:"device_type"`
	Kind          types.Kind     `json:"kind,omitempty"`
	WiFi          []render.Field `json:"wifi,omitempty"`
	WiFiQR        string         `json:"wifi_qr,omitempty"`
}

func externalURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host := c.Request.Host
	if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return scheme + "://" + host + path
}

// activeRecord loads and parses the active profile, answering the request
// itself on failure
func (s *Server) activeRecord(c *gin.Context) (*types.ConfigurationRecord, bool) {
	name, data, err := s.Library.ActiveData()
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusNotFound, msgProfileNotFound)
		return nil, false
	}
	rec, ok := profile.Parse(data)
	if !ok {
		_ = c.Error(fmt.Errorf("profile %s has no usable Wi-Fi payload", name))
		c.String(http.StatusInternalServerError, msgUnparsable)
		return nil, false
	}
	return rec, true
}

func (s *Server) index(c *gin.Context) {
	profiles, err := s.Library.List()
	if err != nil {
		respondErr(c, err)
		return
	}

	idx := Index{
		ActiveProfile: s.Library.Active(),
		Profiles:      profiles,
		DeviceType:    DetectDevice(c.GetHeader("User-Agent")),
	}

	if _, data, err := s.Library.ActiveData(); err == nil {
		idx.ProfileExists = true
		idx.ProfileURL = externalURL(c, ProfilePath)
		if rec, ok := profile.Parse(data); ok {
			idx.Kind = rec.Classify()
			idx.WiFi = render.Summary(rec)
			if idx.DeviceType == DeviceAndroid {
				idx.WiFiQR, _ = render.WiFiQRPayload(rec)
			}
		}
	}

	c.JSON(http.StatusOK, idx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "wifiprof"})
}

func (s *Server) serveProfile(c *gin.Context) {
	name, data, err := s.Library.ActiveData()
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusNotFound, msgProfileNotFound)
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	c.Header("Pragma", "no-cache")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, fetch.ProfileContentType, data)
}

func (s *Server) profileReturn(c *gin.Context) {
	c.String(http.StatusOK, msgInstalled)
}

func (s *Server) appSiteAssociation(c *gin.Context) {
	team, bundle := s.cfg.TeamID, s.cfg.BundleID
	if team == "" {
		team = "TEAMID"
	}
	if bundle == "" {
		bundle = "BUNDLEID"
	}

	details := []gin.H{{
		"appID": team + "." + bundle,
		"paths": []string{ReturnPath},
	}}
	c.JSON(http.StatusOK, gin.H{
		"applinks": gin.H{"apps": []string{}, "details": details},
	})
}

func (s *Server) androidWifi(c *gin.Context) {
	rec, ok := s.activeRecord(c)
	if !ok {
		return
	}
	out, err := render.AndroidXML(rec)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, msgUnparsable)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="wifi-config.xml"`)
	c.Data(http.StatusOK, "application/xml", out)
}

func (s *Server) wifiQR(c *gin.Context) {
	rec, ok := s.activeRecord(c)
	if !ok {
		return
	}
	payload, err := render.WiFiQRPayload(rec)
	if err != nil {
		_ = c.Error(err)
		c.String(statusFor(err), errors.GetErrorMessage(err))
		return
	}
	c.String(http.StatusOK, payload)
}

func (s *Server) listProfiles(c *gin.Context) {
	profiles, err := s.Library.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"profiles": profiles,
		"active":   s.Library.Active(),
	}, "")
}

func (s *Server) uploadProfile(c *gin.Context) {
	if s.cfg.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File exceeds the %d byte limit", s.cfg.MaxUploadBytes))
			return
		}
		respondError(c, http.StatusBadRequest, msgNoFile)
		return
	}
	if header.Filename == "" {
		respondError(c, http.StatusBadRequest, msgNoFile)
		return
	}
	if name := SanitizeName(header.Filename); name == "" || !Allowed(name) {
		respondError(c, http.StatusBadRequest, msgBadType)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondErr(c, errors.Wrap(err, errors.ErrFileRead, "failed to read upload"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondErr(c, errors.Wrap(err, errors.ErrFileRead, "failed to read upload"))
		return
	}

	name, err := s.Library.Save(header.Filename, data)
	if err != nil {
		respondErr(c, err)
		return
	}

	result := gin.H{"name": name}
	if rec, ok := profile.Parse(data); ok {
		result["kind"] = rec.Classify()
	}
	s.logger.Info().Str("profile", name).Int("bytes", len(data)).Msg("Profile uploaded")
	respondSuccess(c, http.StatusCreated, result, fmt.Sprintf("Profile %q uploaded", name))
}

func (s *Server) setActive(c *gin.Context) {
	name, err := s.Library.SetActive(c.Param("name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	s.logger.Info().Str("profile", name).Msg("Active profile changed")
	respondSuccess(c, http.StatusOK, gin.H{"active": name}, fmt.Sprintf("Active profile set to %q", name))
}

func (s *Server) deleteProfile(c *gin.Context) {
	name := SanitizeName(c.Param("name"))
	wasActive, err := s.Library.Delete(c.Param("name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	s.logger.Info().Str("profile", name).Bool("was_active", wasActive).Msg("Profile deleted")
	respondSuccess(c, http.StatusOK, gin.H{"name": name, "was_active": wasActive}, fmt.Sprintf("Profile %q deleted", name))
}
