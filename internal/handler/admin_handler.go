package handler

import (
	"net/http"
	"strconv"

	"visaportal/internal/config"
	"visaportal/internal/repository"
)

// AdminHandler exposes the operator view: recent (redacted) receipts and
// portal readiness.
type AdminHandler struct {
	cfg      *config.Config
	receipts *repository.ReceiptRepo
}

func NewAdminHandler(cfg *config.Config, receipts *repository.ReceiptRepo) *AdminHandler {
	return &AdminHandler{cfg: cfg, receipts: receipts}
}

func (h *AdminHandler) Receipts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 20
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"receipts": h.receipts.Recent(limit),
		"total":    h.receipts.Count(),
	})
}

func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"mail_ready":  h.cfg.Complete(),
		"smtp_server": h.cfg.SMTPServer,
		"smtp_port":   h.cfg.SMTPPort,
		"admin_email": h.cfg.AdminEmail,
		"submissions": h.receipts.Count(),
	})
}
