package registry

import (
	"fmt"
)

// ServiceManager ties a service registration to its lifecycle: register on
// Start, deregister on Stop.
type ServiceManager struct {
	registry      *ConsulRegistry
	serviceConfig *ServiceConfig
}

func NewServiceManager(consulConfig *ConsulConfig, serviceConfig *ServiceConfig) (*ServiceManager, error) {
	consulRegistry, err := NewConsulRegistry(consulConfig)
	if err != nil {
		return nil, err
	}
	return &ServiceManager{
		registry:      consulRegistry,
		serviceConfig: serviceConfig,
	}, nil
}

func (sm *ServiceManager) Start() error {
	if err := sm.registry.RegisterService(sm.serviceConfig); err != nil {
		return fmt.Errorf("service registration failed: %w", err)
	}
	return nil
}

func (sm *ServiceManager) Stop() error {
	return sm.registry.DeregisterService(sm.serviceConfig.ID)
}
