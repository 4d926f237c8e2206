package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialboot/pkg/platform/httputil"
	"socialboot/pkg/requestcontext"
)

type WalletHandler struct {
	wallet WalletService
	logger *slog.Logger
}

func NewWalletHandler(wallet WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{wallet: wallet, logger: logger}
}

func (h *WalletHandler) Register(r chi.Router) {
	r.Get("/wallet", h.HandleGet)
	r.Post("/wallet/credit", h.HandleCredit)
	r.Post("/wallet/debit", h.HandleDebit)
}

func (h *WalletHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toWalletResponse(h.wallet.Balance()))
}

func (h *WalletHandler) HandleCredit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "credit", h.wallet.Credit)
}

func (h *WalletHandler) HandleDebit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "debit", h.wallet.Debit)
}

func (h *WalletHandler) adjust(w http.ResponseWriter, r *http.Request, op string, apply func(context.Context, int) (int, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AmountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	balance, err := apply(ctx, req.Amount)
	if err != nil {
		h.logger.ErrorContext(ctx, "wallet "+op+" failed",
			"request_id", requestID,
			"amount", req.Amount,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "wallet "+op,
		"request_id", requestID,
		"amount", req.Amount,
		"balance", balance,
	)
	httputil.WriteJSON(w, http.StatusOK, toWalletResponse(balance))
}
