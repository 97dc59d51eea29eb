package events

import "github.com/atomicstack/trackmoney/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
)

func (UITracer) StateEnter(menuID string, selected int, subheading string) {
	logging.Trace("state.enter", map[string]interface{}{
		"menu":       menuID,
		"selected":   selected,
		"subheading": subheading,
	})
}

func (UITracer) MenuEnter(menuID string, selected int, description string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"menu":        menuID,
		"selected":    selected,
		"description": description,
	})
}

func (UITracer) MenuCursor(menuID string, selected int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "selected": selected})
}

func (UITracer) Redraw(menuID, key string) {
	logging.Trace("menu.redraw", map[string]interface{}{"menu": menuID, "key": key})
}

func (ActionTracer) Invoke(action string, target int) {
	logging.Trace("action.invoke", map[string]interface{}{"action": action, "target": target})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
