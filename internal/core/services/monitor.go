package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

// MonitorConfig carries the XMI session parameters and the monitored
// system id.
type MonitorConfig struct {
	SID       string
	Company   string
	Product   string
	Interface string
	Version   string
	ExtUser   string
}

// MonitorService fetches the current value of a CCMS monitoring tree
// element over an XMI/XAL session.
type MonitorService struct {
	cfg      MonitorConfig
	creds    ports.CredentialStore
	rfc      ports.RFCConnector
	readings *ReadingService // nil when no archive is wired

	mu     sync.Mutex
	cached *domain.Credential
}

func NewMonitorService(cfg MonitorConfig, creds ports.CredentialStore, rfc ports.RFCConnector, readings *ReadingService) *MonitorService {
	return &MonitorService{cfg: cfg, creds: creds, rfc: rfc, readings: readings}
}

// Fetch resolves the MTE's TID, reads its current value with the
// class-appropriate BAPI and returns the reading. The XMI session is
// always logged off before returning.
func (s *MonitorService) Fetch(ctx context.Context, mte domain.MTE) (*domain.Reading, error) {
	if err := mte.Validate(); err != nil {
		return nil, err
	}

	cred, err := s.credential(ctx)
	if err != nil {
		return nil, err
	}

	conn, err := s.rfc.Open(ctx, cred)
	if err != nil {
		// The stored credential may have rotated; refetch on the next call.
		s.invalidateCredential()
		return nil, fmt.Errorf("open rfc connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warnf("close rfc connection: %v", err)
		}
	}()

	if err := s.logon(conn); err != nil {
		return nil, err
	}
	defer s.logoff(conn)

	tid, class, err := s.lookupTID(conn, mte)
	if err != nil {
		return nil, err
	}

	value, err := s.currentValue(conn, tid, class)
	if err != nil {
		return nil, err
	}

	reading := &domain.Reading{
		ID:          uuid.New().String(),
		SID:         s.cfg.SID,
		MTE:         mte,
		Class:       class,
		Value:       value,
		CollectedAt: time.Now().UTC(),
	}

	log.WithFields(log.Fields{
		"sid":     reading.SID,
		"context": mte.ContextName,
		"object":  mte.ObjectName,
		"mte":     mte.MTEName,
		"class":   string(class),
		"value":   value,
	}).Info("mte value fetched")

	if s.readings != nil {
		// The value was already obtained; archiving is best effort.
		if err := s.readings.Record(ctx, reading); err != nil && !errors.Is(err, domain.ErrArchiveDisabled) {
			log.Warnf("archive reading: %v", err)
		}
	}

	return reading, nil
}

func (s *MonitorService) logon(conn ports.RFCConnection) error {
	res, err := conn.Call("BAPI_XMI_LOGON", map[string]interface{}{
		"EXTCOMPANY": s.cfg.Company,
		"EXTPRODUCT": s.cfg.Product,
		"INTERFACE":  s.cfg.Interface,
		"VERSION":    s.cfg.Version,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrXMILogonFailed, err)
	}
	if err := checkReturn(res); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrXMILogonFailed, err)
	}
	return nil
}

func (s *MonitorService) logoff(conn ports.RFCConnection) {
	res, err := conn.Call("BAPI_XMI_LOGOFF", map[string]interface{}{
		"INTERFACE": s.cfg.Interface,
	})
	if err != nil {
		log.Warnf("xmi logoff: %v", err)
		return
	}
	if err := checkReturn(res); err != nil {
		log.Warnf("xmi logoff: %v", err)
	}
}

func (s *MonitorService) lookupTID(conn ports.RFCConnection, mte domain.MTE) (map[string]interface{}, domain.MTEClass, error) {
	res, err := conn.Call("BAPI_SYSTEM_MTE_GETTIDBYNAME", map[string]interface{}{
		"SYSTEM_ID":          s.cfg.SID,
		"CONTEXT_NAME":       mte.ContextName,
		"OBJECT_NAME":        mte.ObjectName,
		"MTE_NAME":           mte.MTEName,
		"EXTERNAL_USER_NAME": s.cfg.ExtUser,
	})
	if err != nil {
		return nil, "", fmt.Errorf("get tid by name: %w", err)
	}
	if err := checkReturn(res); err != nil {
		return nil, "", err
	}

	tid, ok := res["TID"].(map[string]interface{})
	if !ok || len(tid) == 0 {
		return nil, "", domain.ErrTIDNotFound
	}

	class := domain.MTEClass(fmt.Sprint(tid["MTCLASS"]))
	return tid, class, nil
}

func (s *MonitorService) currentValue(conn ports.RFCConnection, tid map[string]interface{}, class domain.MTEClass) (string, error) {
	var bapi string
	var path []string

	switch class {
	case domain.MTEClassPerformance:
		bapi, path = "BAPI_SYSTEM_MTE_GETPERFCURVAL", []string{"CURRENT_VALUE", "ALRELEVVAL"}
	case domain.MTEClassLog:
		bapi, path = "BAPI_SYSTEM_MTE_GETMLCURVAL", []string{"XMI_MSG_EXT"}
	case domain.MTEClassStatus:
		bapi, path = "BAPI_SYSTEM_MTE_GETSMVALUE", []string{"VALUE"}
	case domain.MTEClassText:
		bapi, path = "BAPI_SYSTEM_MTE_GETTXTPROP", []string{"PROPERTIES", "TEXT"}
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedClass, string(class))
	}

	res, err := conn.Call(bapi, map[string]interface{}{
		"EXTERNAL_USER_NAME": s.cfg.ExtUser,
		"TID":                tid,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", bapi, err)
	}
	if err := checkReturn(res); err != nil {
		return "", err
	}

	return fieldAt(res, path...)
}

func (s *MonitorService) credential(ctx context.Context) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}

	cred, err := s.creds.Fetch(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("fetch credential: %w", err)
	}
	s.cached = cred
	return *cred, nil
}

func (s *MonitorService) invalidateCredential() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// checkReturn inspects the BAPI RETURN structure; TYPE "E" is an error.
func checkReturn(res map[string]interface{}) error {
	ret, ok := res["RETURN"].(map[string]interface{})
	if !ok {
		return nil
	}
	if typ, _ := ret["TYPE"].(string); typ == "E" {
		msg := fmt.Sprint(ret["MESSAGE"])
		log.WithField("message", msg).Error("BAPI error return")
		return fmt.Errorf("%w: %s", domain.ErrBAPICallFailed, msg)
	}
	return nil
}

// fieldAt walks nested result structures and renders the leaf as a string.
func fieldAt(res map[string]interface{}, path ...string) (string, error) {
	var cur interface{} = res
	for _, key := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return "", domain.ErrValueFieldMissing
		}
		cur, ok = m[key]
		if !ok {
			return "", domain.ErrValueFieldMissing
		}
	}
	if s, ok := cur.(string); ok {
		return s, nil
	}
	return fmt.Sprint(cur), nil
}
