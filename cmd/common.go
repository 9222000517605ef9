/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/valpere/promptran/internal/completion"
	"github.com/valpere/promptran/internal/translation"
)

// buildService constructs the completion client named by the loaded config
// and wraps it in a translation service.
func buildService(ctx context.Context) (*translation.Service, error) {
	client, err := completion.New(ctx, cfg.Completion())
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}
	return translation.NewService(client, cfg.Translation(), logger.Named("translation")), nil
}
