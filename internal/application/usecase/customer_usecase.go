package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/ports"
	"github.com/edsonpereira/nexus-crm/internal/domain"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/domain/repository"
)

// CustomerUseCase es el registro autoritativo de clientes: mantiene la
// colección en memoria (el frente es lo más reciente) y la sobreescribe
// completa en el almacenamiento tras cada mutación. Cada mutación encadena,
// en orden, persistencia → notificación → webhook; los fallos del webhook
// nunca revierten la mutación ya persistida.
type CustomerUseCase struct {
	store    repository.CustomerStore
	notifier *NotificationUseCase
	webhook  *WebhookNotifier

	mu        sync.Mutex
	customers []entity.Customer
}

// NewCustomerUseCase carga la colección persistida y construye el registro.
func NewCustomerUseCase(store repository.CustomerStore, notifier *NotificationUseCase, webhook *WebhookNotifier) (*CustomerUseCase, error) {
	customers, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &CustomerUseCase{
		store:     store,
		notifier:  notifier,
		webhook:   webhook,
		customers: customers,
	}, nil
}

// List devuelve todos los clientes en orden de inserción (el más reciente primero).
func (uc *CustomerUseCase) List() []entity.Customer {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Customer, len(uc.customers))
	copy(out, uc.customers)
	return out
}

// Create acuña un ID nuevo, antepone el cliente a la colección y persiste.
// Dispara el evento "created" y una notificación de éxito.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (entity.Customer, error) {
	customer, err := buildCustomer(uuid.New().String(), in)
	if err != nil {
		return entity.Customer{}, err
	}

	uc.mu.Lock()
	next := append([]entity.Customer{customer}, uc.customers...)
	if err := uc.store.Save(next); err != nil {
		uc.mu.Unlock()
		return entity.Customer{}, fmt.Errorf("crear cliente: %w", err)
	}
	uc.customers = next
	uc.mu.Unlock()

	uc.notifier.Append("Novo cliente adicionado: "+customer.Name, entity.NotifSuccess)
	uc.webhook.Send(ctx, ports.EventCreated, customer, nil)
	return customer, nil
}

// Update reemplaza los campos del cliente conservando su ID. Si el ID no
// existe no muta nada y devuelve nil (la edición siempre parte de un
// registro cargado, así que el caso solo aparece en llamadas directas a la
// API). Un cambio de estado dispara el evento "status_change".
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	updated, err := buildCustomer(id, in)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	idx := uc.indexOf(id)
	if idx < 0 {
		uc.mu.Unlock()
		return nil, nil
	}
	previous := uc.customers[idx]

	next := make([]entity.Customer, len(uc.customers))
	copy(next, uc.customers)
	next[idx] = updated
	if err := uc.store.Save(next); err != nil {
		uc.mu.Unlock()
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	uc.customers = next
	uc.mu.Unlock()

	uc.notifier.Append("Cliente atualizado: "+updated.Name, entity.NotifInfo)
	if previous.Status != updated.Status {
		uc.webhook.Send(ctx, ports.EventStatusChange, updated, nil)
	}
	return &updated, nil
}

// Delete elimina el cliente y persiste. Devuelve false (sin error) si el ID
// no existe. La confirmación previa del usuario es responsabilidad del
// cliente de la API; aquí el borrado ya es definitivo.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (bool, error) {
	uc.mu.Lock()
	idx := uc.indexOf(id)
	if idx < 0 {
		uc.mu.Unlock()
		return false, nil
	}
	customer := uc.customers[idx]

	next := make([]entity.Customer, 0, len(uc.customers)-1)
	next = append(next, uc.customers[:idx]...)
	next = append(next, uc.customers[idx+1:]...)
	if err := uc.store.Save(next); err != nil {
		uc.mu.Unlock()
		return false, fmt.Errorf("eliminar cliente: %w", err)
	}
	uc.customers = next
	uc.mu.Unlock()

	uc.notifier.Append("Cliente removido: "+customer.Name, entity.NotifWarning)
	uc.webhook.Send(ctx, ports.EventDeleted, customer, nil)
	return true, nil
}

// Filter devuelve los clientes cuyo nombre contiene el término (ignorando
// mayúsculas y acentos) o cuyo teléfono lo contiene literalmente,
// intersectado con el filtro de estado ("All" acepta todos). Mismo orden
// que List.
func (uc *CustomerUseCase) Filter(searchTerm, statusFilter string) []entity.Customer {
	// Un transformador por llamada, reutilizado fila a fila. No puede ser
	// una variable de paquete: transform.Chain mantiene buffers internos y
	// compartirlo entre llamadas concurrentes sería una carrera.
	tr := newSearchTransformer()
	term := normalizeSearch(tr, searchTerm)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]entity.Customer, 0, len(uc.customers))
	for _, c := range uc.customers {
		matchesSearch := term == "" ||
			strings.Contains(normalizeSearch(tr, c.Name), term) ||
			strings.Contains(c.Phone, searchTerm)
		matchesStatus := statusFilter == entity.StatusFilterAll || string(c.Status) == statusFilter
		if matchesSearch && matchesStatus {
			out = append(out, c)
		}
	}
	return out
}

// ExportCSV serializa la colección completa: encabezado en portugués y una
// fila por cliente en orden de List. Los campos se unen con coma sin escape
// alguno; una coma dentro del nombre corrompe la fila (formato heredado del
// export histórico, se mantiene por compatibilidad).
func (uc *CustomerUseCase) ExportCSV() string {
	customers := uc.List()

	var b strings.Builder
	b.WriteString("Nome,Telefone,E-mail,Valor,Data,Status")
	for _, c := range customers {
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			c.Name, c.Phone, c.Email, c.Value.String(), c.Date, string(c.Status),
		}, ","))
	}
	uc.notifier.Append("Banco de dados exportado com sucesso", entity.NotifSuccess)
	return b.String()
}

// ClearAll vacía la colección y persiste el estado vacío. Destructivo e
// irrecuperable; la confirmación es responsabilidad del cliente de la API.
func (uc *CustomerUseCase) ClearAll() error {
	uc.mu.Lock()
	empty := []entity.Customer{}
	if err := uc.store.Save(empty); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("limpiar base de clientes: %w", err)
	}
	uc.customers = empty
	uc.mu.Unlock()

	uc.notifier.Append("Base de dados limpa com sucesso", entity.NotifError)
	return nil
}

// indexOf busca el índice del cliente por ID. Debe llamarse con el mutex tomado.
func (uc *CustomerUseCase) indexOf(id string) int {
	for i, c := range uc.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// buildCustomer materializa la entidad desde la entrada ya validada por el
// DTO. El registro confía en su entrada; aquí solo quedan los defaults y las
// dos comprobaciones que el validador de structs no cubre.
func buildCustomer(id string, in dto.CustomerRequest) (entity.Customer, error) {
	if in.Value.IsNegative() {
		return entity.Customer{}, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !status.Valid() {
		return entity.Customer{}, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return entity.Customer{
		ID:     id,
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
		Value:  in.Value,
		Date:   date,
		Status: status,
		Notes:  in.Notes,
	}, nil
}

// newSearchTransformer arma la cadena que elimina diacríticos
// (descomposición, remoción de marcas, recomposición).
func newSearchTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// normalizeSearch pasa el texto a minúsculas y elimina diacríticos, de modo
// que "joao" encuentre a "João". transform.String resetea el transformador,
// así que es seguro reutilizarlo en llamadas sucesivas.
func normalizeSearch(tr transform.Transformer, s string) string {
	out, _, err := transform.String(tr, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
