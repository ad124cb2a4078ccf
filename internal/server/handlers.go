package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/extrato-go/internal/buildinfo"
	"github.com/ukaji3/extrato-go/internal/logger"
	"github.com/ukaji3/extrato-go/pkg/extrato"
)

// XLSXContentType is the media type of xlsx workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) index(c *gin.Context) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// health handles GET /api/health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": buildinfo.String(),
	})
}

// unmerge handles POST /api/unmerge
func (s *Server) unmerge(c *gin.Context) {
	name, data, ok := s.readUpload(c)
	if !ok {
		return
	}

	log := logger.FromContext(c.Request.Context())
	out, err := extrato.Unmerge(data, extrato.Options{Logger: &log})
	if err != nil {
		s.fail(c, err)
		return
	}

	sendWorkbook(c, extrato.OutputPath(name, extrato.SuffixUnmerged, ".xlsx"), out)
}

// process handles POST /api/process
func (s *Server) process(c *gin.Context) {
	name, data, ok := s.readUpload(c)
	if !ok {
		return
	}

	log := logger.FromContext(c.Request.Context())
	out, err := extrato.Process(data, extrato.Options{Logger: &log})
	if err != nil {
		s.fail(c, err)
		return
	}

	sendWorkbook(c, extrato.OutputPath(name, extrato.SuffixProcessed, ".xlsx"), out)
}

// readUpload reads the multipart "file" field. On failure it writes the
// error response and returns ok=false.
func (s *Server) readUpload(c *gin.Context) (name string, data []byte, ok bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes())

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds the %d MB upload limit", s.cfg.MaxUploadMB))
			return "", nil, false
		}
		writeError(c, http.StatusBadRequest, "missing file field")
		return "", nil, false
	}

	name = filepath.Base(fh.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		writeError(c, http.StatusBadRequest, "only .xlsx files are accepted")
		return "", nil, false
	}

	f, err := fh.Open()
	if err != nil {
		s.fail(c, extrato.NewIOError(extrato.StageRead, err))
		return "", nil, false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		s.fail(c, extrato.NewIOError(extrato.StageRead, err))
		return "", nil, false
	}
	return name, data, true
}

// fail maps pipeline errors to a status code and a readable message.
func (s *Server) fail(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())
	switch {
	case extrato.IsFormat(err):
		log.Warn().Err(err).Msg("unreadable spreadsheet")
		writeError(c, http.StatusUnprocessableEntity, "The spreadsheet could not be read: "+err.Error())
	case extrato.IsIO(err):
		log.Error().Err(err).Msg("file handling failed")
		writeError(c, http.StatusInternalServerError, "The file could not be handled: "+err.Error())
	default:
		log.Error().Err(err).Msg("processing failed")
		writeError(c, http.StatusInternalServerError, "Processing failed: "+err.Error())
	}
}

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, XLSXContentType, data)
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
