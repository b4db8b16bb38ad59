package usecase

import (
	"sync"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/domain/repository"
)

// SettingsUseCase mantiene la configuración editable del CRM (URL del
// webhook y nombre de la empresa). Instancia única en memoria con
// write-through a su propio blob.
type SettingsUseCase struct {
	store    repository.ConfigStore
	notifier *NotificationUseCase

	mu  sync.RWMutex
	cfg entity.CRMConfig
}

// NewSettingsUseCase carga la configuración persistida. Si nunca se guardó,
// el nombre de empresa arranca con el valor por defecto indicado.
func NewSettingsUseCase(store repository.ConfigStore, notifier *NotificationUseCase, defaultCompanyName string) (*SettingsUseCase, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = defaultCompanyName
	}
	return &SettingsUseCase{store: store, notifier: notifier, cfg: cfg}, nil
}

// Current devuelve la configuración vigente.
func (uc *SettingsUseCase) Current() entity.CRMConfig {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cfg
}

// WebhookURL devuelve la URL de webhook configurada; vacía si no hay.
func (uc *SettingsUseCase) WebhookURL() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cfg.WebhookURL
}

// Save reemplaza la configuración, persiste y notifica el guardado.
func (uc *SettingsUseCase) Save(in dto.SettingsRequest) (entity.CRMConfig, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cfg := entity.CRMConfig{
		WebhookURL:  in.WebhookURL,
		CompanyName: in.CompanyName,
	}
	if err := uc.store.SaveConfig(cfg); err != nil {
		return entity.CRMConfig{}, err
	}
	uc.cfg = cfg
	uc.notifier.Append("Configurações salvas com sucesso", entity.NotifSuccess)
	return cfg, nil
}

// StartManualSync registra el inicio de una sincronización manual. El envío
// real lo dispara el operador desde su herramienta de automatización; aquí
// solo queda la traza en la bitácora.
func (uc *SettingsUseCase) StartManualSync() {
	uc.notifier.Append("Sincronização manual iniciada", entity.NotifInfo)
}
