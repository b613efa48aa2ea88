package ai

import (
	"fmt"
	"strings"
)

func describeTextPrompt(name, content string) string {
	return fmt.Sprintf(`Describe this text file. This is the name of the file: <name>%s</name>.
Here is a portion of the file:
<contents>
%s
</contents>
Wrap the description in <description></description> tags. Keep your response concise and to the point, no more than 30 words.`, name, content)
}

func describeImagePrompt(name string) string {
	return fmt.Sprintf(`Describe the contents of the attached image. This is the name of the file: <name>%s</name>.
Wrap the description in <description></description> tags. Keep your response concise and to the point, no more than 30 words.`, name)
}

func describeOtherPrompt(name string) string {
	return fmt.Sprintf(`Describe the contents of this file. This is the name of the file: <name>%s</name>.
Wrap the description in <description></description> tags. Keep your response concise, 5 to 10 words.`, name)
}

func suggestPrompt(descriptions []string) string {
	return fmt.Sprintf(`You are given a list of file descriptions. Group these files into categories. Here are the file descriptions:
<file_descriptions>
%s
</file_descriptions>
Suggest up to 10 categories for these files. Wrap the categories in <categories></categories> tags and separate them with ", ".
Categories must be valid folder names such as example or example-category, without restricted characters.`,
		strings.Join(descriptions, ", "))
}

func pickPrompt(description string, candidates []string) string {
	return fmt.Sprintf(`You are given a file description. Choose a category for this file. Here is the file description:
<file_description>
%s
</file_description>
Wrap the category in <category></category> tags. Choose from this list only:
<categories>
%s
</categories>`, description, strings.Join(candidates, ", "))
}
