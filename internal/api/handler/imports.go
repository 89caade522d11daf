package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

const maxUploadSize = 32 << 20

var allowedExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".csv":  true,
}

// UploadImport recebe um ficheiro do ZSBMS (campo "file") e importa-o. O parâmetro type força
// o formato, senão é detetado pelo nome e conteúdo.
func UploadImport(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadImport")

		fileType := domain.FileTypeUnknown
		if raw := r.URL.Query().Get("type"); raw != "" {
			ft, ok := domain.ParseFileType(raw)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, "Tipo de relatório desconhecido", map[string]any{"type": raw})
				return
			}
			fileType = ft
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Ficheiro acima do limite permitido", map[string]any{"max_bytes": maxUploadSize})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file é obrigatório", nil)
			return
		}
		defer file.Close()

		name := filepath.Base(header.Filename)
		middleware.Annotate(r.Context(), "file", name)
		middleware.Annotate(r.Context(), "size_bytes", header.Size)
		if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, "Apenas ficheiros .xls, .xlsx ou .csv", map[string]any{"file": name})
			return
		}

		// O nome original é mantido porque a deteção do formato usa o nome do ficheiro.
		dir, err := os.MkdirTemp("", "upload-*")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao guardar o ficheiro", nil)
			return
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, name)
		if err := saveUpload(path, file); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao guardar o ficheiro", nil)
			return
		}

		var result *domain.ImportResult
		if fileType == domain.FileTypeUnknown {
			result, err = service.ImportFile(r.Context(), path, domain.ImportSourceUpload)
		} else {
			result, err = service.ImportFileAs(r.Context(), path, fileType, domain.ImportSourceUpload)
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("file", name).Warn("Importação falhou")

			code := apiErrors.ErrImportFailed
			if errors.Is(err, importing.ErrUnsupportedFileType) {
				code = apiErrors.ErrUnsupportedFileType
			}
			apiErrors.WriteError(w, code, err.Error(), result)
			return
		}

		middleware.Annotate(r.Context(), "file_type", result.FileType)
		writeJSON(w, http.StatusOK, result)
	}
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func ListImports(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryLimit(w, r)
		if !ok {
			return
		}

		logs, err := service.ListImportLogs(r.Context(), limit)
		if err != nil {
			logrus.Error("Erro ao listar importações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar importações", nil)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
