package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iAmAuthenticatedAsAnEngineer() error {
	t.engineerID = uuid.New()

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"engineer_id": t.engineerID.String(),
		"email":       "engineer@example.com",
		"exp":         jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":         jwt.NewNumericDate(now),
		"nbf":         jwt.NewNumericDate(now),
		"sub":         t.engineerID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) aProjectExistsWithName(name string) error {
	return t.createProject(name, t.engineerID)
}

func (t *testContext) aProjectOwnedByAnotherEngineerExists() error {
	return t.createProject("Riverside Warehouse", uuid.New())
}

func (t *testContext) createProject(name string, engineerID uuid.UUID) error {
	projectID := uuid.New()
	t.currentProjectID = projectID

	now := time.Now().UTC()
	projectModel := &model.ProjectModel{
		ID:         projectID,
		Name:       name,
		Location:   "Test Site",
		Status:     "active",
		EngineerID: engineerID,
		StartDate:  now.AddDate(0, -1, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(projectModel).Error
}

func (t *testContext) aMaterialExists(name string, quantity int, unitPrice string) error {
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return fmt.Errorf("invalid unit price %q: %w", unitPrice, err)
	}

	materialID := uuid.New()
	t.currentMaterialID = materialID

	now := time.Now().UTC()
	materialModel := &model.MaterialModel{
		ID:        materialID,
		ProjectID: t.currentProjectID,
		Name:      name,
		Quantity:  float64(quantity),
		Price:     price,
		Unit:      "unit",
		Category:  "structural",
		DateAdded: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(materialModel).Error
}

func (t *testContext) aTaskExistsWithTitle(title string) error {
	taskID := uuid.New()
	t.currentTaskID = taskID

	now := time.Now().UTC()
	taskModel := &model.TaskModel{
		ID:           taskID,
		ProjectID:    t.currentProjectID,
		Title:        title,
		Status:       "pending",
		Priority:     "medium",
		PlannedStart: now,
		PlannedEnd:   now.AddDate(0, 0, 14),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(taskModel).Error
}

// theProjectBudgetHasBeenLoaded primes the budget store for the current
// project by issuing a GET, the same way a client opening the budget tab
// would.
func (t *testContext) theProjectBudgetHasBeenLoaded() error {
	path := fmt.Sprintf("/api/v1/projects/%s/budget", t.currentProjectID)
	return t.executeRequest(http.MethodGet, path, nil)
}

func (t *testContext) theOracleRespondsWith(method, path string, status int, body *godog.DocString) error {
	if oracleMock == nil {
		return errors.New("oracle mock is not running")
	}

	content := t.replacePlaceholders(body.Content)
	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return fmt.Errorf("invalid oracle stub body: %w", err)
	}

	oracleMock.SetResponse(method, path, status, payload)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iWaitMilliseconds(ms int) error {
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{project_id}}", t.currentProjectID.String())
	content = strings.ReplaceAll(content, "{{material_id}}", t.currentMaterialID.String())
	content = strings.ReplaceAll(content, "{{task_id}}", t.currentTaskID.String())
	content = strings.ReplaceAll(content, "{{log_id}}", t.currentLogID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID)
	content = strings.ReplaceAll(content, "{{engineer_id}}", t.engineerID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var responseBody map[string]any
	if err := json.Unmarshal(raw, &responseBody); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers resource identifiers from create responses so later
// steps can reference them through placeholders. The resource kind is
// inferred from fields unique to each response shape.
func (t *testContext) captureIDs(body map[string]any) {
	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			switch {
			case hasField(body, "engineer_id"):
				t.currentProjectID = id
			case hasField(body, "planned_start"):
				t.currentTaskID = id
			case hasField(body, "price"):
				t.currentMaterialID = id
			case hasField(body, "amount"):
				t.currentLogID = id
			}
		}
	}

	// Budget responses carry the category list; remember the most recently
	// added custom category so scenarios can address it.
	if categories, ok := body["categories"].([]any); ok {
		for i := len(categories) - 1; i >= 0; i-- {
			category, ok := categories[i].(map[string]any)
			if !ok {
				continue
			}
			if isPrimary, _ := category["is_primary"].(bool); isPrimary {
				continue
			}
			if idStr, ok := category["id"].(string); ok {
				t.currentCategoryID = idStr
				break
			}
		}
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(field string, expected int) error {
	value, err := t.responseField(field)
	if err != nil {
		if expected == 0 {
			// An empty list may be omitted or null in the response.
			return nil
		}
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in '%s', got %d", expected, field, len(list))
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countInTable(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countInTable(quantity, table, criteria)
}

func (t *testContext) countInTable(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theOracleShouldHaveReceivedRequests(quantity int, method, path string) error {
	if oracleMock == nil {
		return errors.New("oracle mock is not running")
	}

	count := oracleMock.RequestCount(method, path)
	if count != quantity {
		return fmt.Errorf("expected %d %s requests to '%s', got %d", quantity, method, path, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
