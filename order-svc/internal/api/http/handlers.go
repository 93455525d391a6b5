package httpapi

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"pizza-order/order-svc/internal/domain"
	"pizza-order/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Form service.FormControllerInterface
	QR   service.QRGenerator
	Log  logrus.FieldLogger
}

func NewHandler(form service.FormControllerInterface, qr service.QRGenerator, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		Form: form,
		QR:   qr,
		Log:  log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/", h.showForm).Methods("GET")
	r.HandleFunc("/order", h.placeOrder).Methods("POST")
	r.HandleFunc("/clear", h.clearForm).Methods("POST")
	r.HandleFunc("/quit", h.confirmQuit).Methods("GET")
	r.HandleFunc("/quit", h.quit).Methods("POST")
	r.HandleFunc("/receipt/qrcode", h.getReceiptQRCode).Methods("GET")

	r.HandleFunc("/api/form", h.getFormState).Methods("GET")
	r.HandleFunc("/api/receipt", h.computeReceipt).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, formPage, newFormView(h.Form.State(), ""))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := parseOrder(r.PostFormValue("crust"), r.PostFormValue("size"), r.PostForm["topping"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Form.Apply(order)
	if _, err := h.Form.Submit(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.render(w, http.StatusUnprocessableEntity, formPage, newFormView(h.Form.State(), verr.Message))
			return
		}
		h.Log.WithField("path", r.URL.Path).Error("Failed to compute receipt: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) clearForm(w http.ResponseWriter, r *http.Request) {
	h.Form.Clear()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) confirmQuit(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, quitPage, nil)
}

func (h *Handler) quit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(r.PostFormValue("confirm"), "yes") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, goodbyePage, nil)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	h.Log.Info("Quit confirmed")
	h.Form.Quit(true)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	text := h.Form.State().ReceiptText
	if text == "" {
		http.Error(w, "Receipt not found", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate(text)
	if err != nil {
		if errors.Is(err, service.ErrNoReceipt) {
			http.Error(w, "Receipt not found", http.StatusNotFound)
			return
		}
		h.Log.WithField("path", r.URL.Path).Error("Failed to generate QR code: ", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

type orderRequest struct {
	Crust    string   `json:"crust"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
}

type formStateResponse struct {
	Crust       string   `json:"crust"`
	Size        string   `json:"size"`
	Toppings    []string `json:"toppings"`
	ReceiptText string   `json:"receipt_text"`
}

type receiptResponse struct {
	domain.Receipt
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) getFormState(w http.ResponseWriter, r *http.Request) {
	state := h.Form.State()
	toppings := []string{}
	for _, t := range state.Order.Toppings.List() {
		toppings = append(toppings, t.String())
	}
	writeJSON(w, http.StatusOK, formStateResponse{
		Crust:       state.Order.Crust.String(),
		Size:        state.Order.Size.String(),
		Toppings:    toppings,
		ReceiptText: state.ReceiptText,
	})
}

// computeReceipt prices a posted order without touching the form.
func (h *Handler) computeReceipt(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := parseOrder(req.Crust, req.Size, req.Toppings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := service.ComputeReceipt(order)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Code, Message: verr.Message})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, receiptResponse{Receipt: receipt, Text: service.FormatReceipt(receipt)})
}

func parseOrder(crust, size string, toppings []string) (domain.Order, error) {
	order := domain.NewOrder()
	var err error
	if order.Crust, err = domain.ParseCrust(crust); err != nil {
		return order, err
	}
	if order.Size, err = domain.ParseSize(size); err != nil {
		return order, err
	}
	for _, name := range toppings {
		t, err := domain.ParseTopping(name)
		if err != nil {
			return order, err
		}
		order.Toppings = order.Toppings.With(t)
	}
	return order, nil
}

func newFormView(state domain.FormState, errMsg string) formView {
	view := formView{ReceiptText: state.ReceiptText, Error: errMsg}
	for _, c := range domain.Crusts {
		view.Crusts = append(view.Crusts, option{Value: c.String(), Label: c.String(), Checked: state.Order.Crust == c})
	}
	for _, s := range domain.Sizes {
		view.Sizes = append(view.Sizes, option{Value: s.String(), Label: s.String(), Checked: state.Order.Size == s})
	}
	for _, t := range domain.Toppings {
		view.Toppings = append(view.Toppings, option{Value: t.String(), Label: t.String(), Checked: state.Order.Toppings.Has(t)})
	}
	return view
}

func (h *Handler) render(w http.ResponseWriter, status int, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		h.Log.WithField("template", tmpl.Name()).Error("Failed to render page: ", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
